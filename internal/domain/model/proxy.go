package model

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

// ProxyType is the wire protocol of a proxy.
type ProxyType string

const (
	ProxyTypeHTTP   ProxyType = "HTTP"
	ProxyTypeHTTPS  ProxyType = "HTTPS"
	ProxyTypeSOCKS5 ProxyType = "SOCKS5"
)

// ProxyTypes lists the supported proxy types in display order.
func ProxyTypes() []ProxyType {
	return []ProxyType{ProxyTypeHTTP, ProxyTypeHTTPS, ProxyTypeSOCKS5}
}

// Valid reports whether the proxy type is supported.
func (t ProxyType) Valid() bool {
	for _, v := range ProxyTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// ProxyStrategy controls how the crawler rotates through proxies.
type ProxyStrategy string

const (
	ProxyStrategyRoundRobin ProxyStrategy = "round-robin"
	ProxyStrategyRandom     ProxyStrategy = "random"
	ProxyStrategyFailover   ProxyStrategy = "failover"
)

// ProxyStrategies lists the supported strategies in display order.
func ProxyStrategies() []ProxyStrategy {
	return []ProxyStrategy{ProxyStrategyRoundRobin, ProxyStrategyRandom, ProxyStrategyFailover}
}

// Valid reports whether the strategy is supported.
func (s ProxyStrategy) Valid() bool {
	for _, v := range ProxyStrategies() {
		if v == s {
			return true
		}
	}
	return false
}

// Proxy mirrors the backend proxy resource.
type Proxy struct {
	ID        int64         `json:"id"`
	ProxyType ProxyType     `json:"proxy_type"`
	ProxyAddr string        `json:"proxy_addr"`
	Status    Toggle        `json:"status"`
	Strategy  ProxyStrategy `json:"strategy"`
}

// Available reports whether the proxy is enabled.
func (p *Proxy) Available() bool { return p.Status.On() }

// StatusText renders the proxy status label.
func (p *Proxy) StatusText() string {
	if p.Available() {
		return "Available"
	}
	return "Unavailable"
}

// ProxyRequest is the create/update payload for a proxy.
type ProxyRequest struct {
	ProxyType ProxyType     `json:"proxy_type"`
	ProxyAddr string        `json:"proxy_addr"`
	Status    Toggle        `json:"status"`
	Strategy  ProxyStrategy `json:"strategy"`
}

// Normalize trims and canonicalizes fields.
func (r *ProxyRequest) Normalize() {
	r.ProxyType = ProxyType(strings.ToUpper(strings.TrimSpace(string(r.ProxyType))))
	r.ProxyAddr = strings.TrimSpace(r.ProxyAddr)
	r.Strategy = ProxyStrategy(strings.ToLower(strings.TrimSpace(string(r.Strategy))))
	if r.Strategy == "" {
		r.Strategy = ProxyStrategyRoundRobin
	}
}

// Validate checks the request before it is sent to the backend.
func (r *ProxyRequest) Validate() error {
	if !r.ProxyType.Valid() {
		return errors.New("proxy type must be one of: HTTP, HTTPS, SOCKS5")
	}
	if err := ValidateHostPort(r.ProxyAddr); err != nil {
		return err
	}
	if !r.Strategy.Valid() {
		return errors.New("strategy must be one of: round-robin, random, failover")
	}
	return nil
}

// ValidateHostPort checks a host:port address.
func ValidateHostPort(addr string) error {
	if addr == "" {
		return errors.New("address is required")
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return errors.New("address must be host:port")
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
