package telegram

import "errors"

// ErrSendFailed возвращается при ошибке отправки сообщения
var ErrSendFailed = errors.New("telegram client: failed to send message")
