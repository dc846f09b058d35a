package constants

const (
	CHANNEL_SIZE               = 100 // 通道大小
	MANAGED_GROUP_LIMIT        = 50  // 单个用户最多管理的群组数
	INVITE_CODE_LENGTH         = 5   // 邀请码长度
	INVITE_CODE_MAX_RETRY      = 10  // 邀请码碰撞重试上限
	RESERVATION_SPAN_MINUTES   = 59  // 预约时长（分钟），与占用判定窗口配套，勿改
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天
)

const (
	DATE_TIME_FORMAT = "2006-01-02 15:04:05" // 对外展示的时间格式
	DATE_FORMAT      = "2006-01-02"          // 对外展示的日期格式
)
