// Package mockclickhouserows provides a testify mock of the clickhouse-go
// result rows for repository tests. Scan expectations use Run callbacks to
// write values through the destination pointers.
package mockclickhouserows

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/stretchr/testify/mock"
)

type Rows struct {
	mock.Mock
}

var _ driver.Rows = &Rows{}

func (m *Rows) Next() bool {
	return m.Called().Bool(0)
}

func (m *Rows) Scan(dest ...any) error {
	callArgs := []any{}
	callArgs = append(callArgs, dest...)
	return m.Called(callArgs...).Error(0)
}

func (m *Rows) ScanStruct(dest any) error {
	return m.Called(dest).Error(0)
}

func (m *Rows) ColumnTypes() []driver.ColumnType {
	mockArgs := m.Called()
	if v := mockArgs.Get(0); v != nil {
		return v.([]driver.ColumnType)
	}
	return nil
}

func (m *Rows) Totals(dest ...any) error {
	callArgs := []any{}
	callArgs = append(callArgs, dest...)
	return m.Called(callArgs...).Error(0)
}

func (m *Rows) Columns() []string {
	mockArgs := m.Called()
	if v := mockArgs.Get(0); v != nil {
		return v.([]string)
	}
	return nil
}

func (m *Rows) Close() error {
	return m.Called().Error(0)
}

func (m *Rows) Err() error {
	return m.Called().Error(0)
}
