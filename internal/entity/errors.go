package entity

import "errors"

var ErrLeadNotFound = errors.New("lead no encontrado")
