package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"prepmap/config"
	"prepmap/internal/infra/auth"
)

func runToken(w io.Writer, subject, roles string, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if ttl > 0 {
		cfg.SecretKey.TTL = ttl
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateToken(subject, splitRoles(roles))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)

	return nil
}

func splitRoles(s string) []string {
	var roles []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}

	return roles
}
