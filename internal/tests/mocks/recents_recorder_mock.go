package mocks

import "context"

type RecentsRecorderMock struct {
	TouchOpenedFunc func(ctx context.Context, path string) error
	TouchSavedFunc  func(ctx context.Context, path string) error
}

func (m *RecentsRecorderMock) TouchOpened(ctx context.Context, path string) error {
	if m.TouchOpenedFunc != nil {
		return m.TouchOpenedFunc(ctx, path)
	}
	return nil
}

func (m *RecentsRecorderMock) TouchSaved(ctx context.Context, path string) error {
	if m.TouchSavedFunc != nil {
		return m.TouchSavedFunc(ctx, path)
	}
	return nil
}
