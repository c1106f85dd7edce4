package tickload_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dataheck/tickload/pkg/tickload"
)

func TestLoadConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    tickload.LoadConfig
		wantError bool
	}{
		{
			name: "valid config",
			config: tickload.LoadConfig{
				RootDir:          "./data",
				ConnectionString: "postgresql://localhost:5432/marketdata",
				Workers:          4,
			},
			wantError: false,
		},
		{
			name: "single worker is valid",
			config: tickload.LoadConfig{
				RootDir:          "./data",
				ConnectionString: "postgresql://localhost:5432/marketdata",
				Workers:          1,
			},
			wantError: false,
		},
		{
			name: "missing root directory",
			config: tickload.LoadConfig{
				ConnectionString: "postgresql://localhost:5432/marketdata",
				Workers:          4,
			},
			wantError: true,
		},
		{
			name: "missing connection string",
			config: tickload.LoadConfig{
				RootDir: "./data",
				Workers: 4,
			},
			wantError: true,
		},
		{
			name: "zero workers",
			config: tickload.LoadConfig{
				RootDir:          "./data",
				ConnectionString: "postgresql://localhost:5432/marketdata",
				Workers:          0,
			},
			wantError: true,
		},
		{
			name: "negative timeout",
			config: tickload.LoadConfig{
				RootDir:          "./data",
				ConnectionString: "postgresql://localhost:5432/marketdata",
				Workers:          4,
				Timeout:          -time.Second,
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, tickload.ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestContractInfo_Date(t *testing.T) {
	info := tickload.ContractInfo{Root: "@VX", Month: time.April, Year: 2020}

	got := info.Date()
	want := time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("Date() = %v, want %v", got, want)
	}
}
