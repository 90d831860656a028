package mockworker

import (
	"github.com/stretchr/testify/mock"

	"spotlist-analytics-service/internal/model"
)

type Worker struct {
	mock.Mock
}

func (m *Worker) Enqueue(spot model.StoredSpot) {
	m.Called(spot)
}

func (m *Worker) Shutdown() {
	m.Called()
}
