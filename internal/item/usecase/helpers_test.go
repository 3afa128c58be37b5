package usecase_test

import (
	"context"

	"master-data-barang/internal/item"
	"master-data-barang/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}

// fakeRepo is a func-field fake of repository.Repository.
type fakeRepo struct {
	createFunc func(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error)
	calls      int
}

func (f *fakeRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	f.calls++
	return f.createFunc(ctx, opt)
}

// fakeSaver is a func-field fake of filestore.Saver.
type fakeSaver struct {
	saveFunc func(filename string, content []byte) (string, error)
	calls    int
}

func (f *fakeSaver) Save(filename string, content []byte) (string, error) {
	f.calls++
	return f.saveFunc(filename, content)
}
