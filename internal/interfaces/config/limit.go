// Package config
package config

import (
	"errors"
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/log"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         15,
		RateLimitWindow:   "1m",
		PasswordLengthMin: 4,
		PasswordLengthMax: 64,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.PasswordLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must larger than 0"))
	}
	if config.PasswordLengthMax > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_max, value must less than 128"))
	}
	if config.PasswordLengthMin >= config.PasswordLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must less than http_server.limits.password_length_max"))
	}

	return ValidPass()
}
