package logic

import "errors"

// 校验失败类错误，调用方以无操作方式拒绝本次提交
var (
	ErrNameRequired    = errors.New("项目名称不能为空")
	ErrTitleRequired   = errors.New("任务标题不能为空")
	ErrDueDateRequired = errors.New("截止日期不能为空")
	ErrEmailRequired   = errors.New("邮箱不能为空")
	ErrInvalidStatus   = errors.New("无效的任务状态")
	ErrInvalidChannel  = errors.New("无效的聊天频道")
)

// 未找到类错误，调用方静默跳过本次操作
var (
	ErrProjectNotFound = errors.New("项目不存在")
	ErrTaskNotFound    = errors.New("任务不存在")
	ErrUserNotFound    = errors.New("用户不存在")
)

// IsValidation 判断是否为校验失败类错误
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrDueDateRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidChannel)
}

// IsNotFound 判断是否为未找到类错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
