package mocks

type SnapshotterMock struct {
	SnapshotFileFunc func(path string) error
	Calls            []string
}

func (m *SnapshotterMock) SnapshotFile(path string) error {
	m.Calls = append(m.Calls, path)
	if m.SnapshotFileFunc != nil {
		return m.SnapshotFileFunc(path)
	}
	return nil
}
