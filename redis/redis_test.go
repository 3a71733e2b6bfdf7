package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func setupMiniredis(t *testing.T) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	Client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { Client = nil })
}

func TestBlacklistToken(t *testing.T) {
	setupMiniredis(t)

	token := "some.jwt.token"
	if IsBlacklisted(token) {
		t.Fatal("fresh token should not be blacklisted")
	}

	if err := BlacklistToken(token, time.Minute); err != nil {
		t.Fatalf("blacklist failed: %v", err)
	}
	if !IsBlacklisted(token) {
		t.Error("token should be blacklisted after logout")
	}
	if IsBlacklisted("other.jwt.token") {
		t.Error("unrelated token should not be blacklisted")
	}
}

func TestBlacklistWithoutRedis(t *testing.T) {
	Client = nil

	// Without Redis the blacklist degrades to a no-op instead of failing.
	if err := BlacklistToken("token", time.Minute); err != nil {
		t.Fatalf("expected nil error without redis, got %v", err)
	}
	if IsBlacklisted("token") {
		t.Error("nothing is blacklisted when redis is absent")
	}
}

func TestBlacklistIgnoresNonPositiveTTL(t *testing.T) {
	setupMiniredis(t)

	// An already-expired token needs no blacklist entry.
	if err := BlacklistToken("expired", -time.Minute); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if IsBlacklisted("expired") {
		t.Error("expired token should not be stored")
	}
}
