package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/school-tournament/internal/config"
)

func TestInitUptraceDisabled(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: false}, nil)
	if err != nil {
		t.Fatalf("InitUptrace: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown func is nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestInitUptraceEmptyDSNTreatedAsDisabled(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true, UptraceDSN: "   "}, nil)
	if err != nil {
		t.Fatalf("InitUptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
