package config

import (
	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/domain"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	WithLock   func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

// DefaultDeps edits the rc file and prints to out.
func DefaultDeps(out domain.OutputWriter) Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		WithLock:   config.WithLock,
		Set:        config.Set,
		Unset:      config.Unset,
		Get:        config.Get,
		GetAll:     config.GetAll,
		Printf:     out.Printf,
		Println:    out.Println,
	}
}
