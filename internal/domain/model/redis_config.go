package model

import (
	"errors"
	"strings"
)

const (
	DefaultRedisHost = "127.0.0.1"
	DefaultRedisPort = 6379
	maxRedisDB       = 15
)

// RedisConfig is a named Redis connection used by the pipeline workers.
type RedisConfig struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Host      string  `json:"host"`
	Port      int     `json:"port"`
	DB        int     `json:"db"`
	Password  *string `json:"password,omitempty"`
	IsDefault bool    `json:"is_default"`
}

// HasPassword reports whether a non-empty password is configured.
func (c *RedisConfig) HasPassword() bool {
	return c.Password != nil && *c.Password != ""
}

// MaskedPassword renders the password as a fixed mask.
func (c *RedisConfig) MaskedPassword() string {
	if !c.HasPassword() {
		return "-"
	}
	return "******"
}

// TestRequest extracts the connectivity-test payload from the config.
func (c *RedisConfig) TestRequest() RedisTestRequest {
	return RedisTestRequest{Host: c.Host, Port: c.Port, DB: c.DB, Password: c.Password}
}

// RedisConfigRequest is the create/update payload for a Redis config.
type RedisConfigRequest struct {
	Name      string  `json:"name"`
	Host      string  `json:"host"`
	Port      int     `json:"port"`
	DB        int     `json:"db"`
	Password  *string `json:"password,omitempty"` // nil keeps the stored password on update
	IsDefault bool    `json:"is_default"`
}

// Normalize trims fields and applies connection defaults.
func (r *RedisConfigRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Host = strings.TrimSpace(r.Host)
	if r.Host == "" {
		r.Host = DefaultRedisHost
	}
	if r.Port == 0 {
		r.Port = DefaultRedisPort
	}
	if r.Password != nil && *r.Password == "" {
		r.Password = nil
	}
}

// Validate checks the request before it is sent to the backend.
func (r *RedisConfigRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if err := r.TestRequest().Validate(); err != nil {
		return err
	}
	return nil
}

// TestRequest extracts the connectivity-test payload from the request.
func (r *RedisConfigRequest) TestRequest() RedisTestRequest {
	return RedisTestRequest{Host: r.Host, Port: r.Port, DB: r.DB, Password: r.Password}
}

// RedisTestRequest is the body of POST /api/redis-configs/test.
type RedisTestRequest struct {
	Host     string  `json:"host"`
	Port     int     `json:"port"`
	DB       int     `json:"db"`
	Password *string `json:"password"`
}

// Validate checks the connection fields.
func (r RedisTestRequest) Validate() error {
	if r.Host == "" {
		return errors.New("host is required")
	}
	if r.Port < 1 || r.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.New("db must be between 0 and 15")
	}
	return nil
}

// RedisTestResult is the backend's verdict for a connectivity test.
type RedisTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
