package services

// HealthStatus is the health check result
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthService implements the health service
type HealthService struct {
	serviceName string
	checkStore  func() error
}

// NewHealthService creates a new health service. checkStore may be nil
// when the in-memory store is in use.
func NewHealthService(serviceName string, checkStore func() error) *HealthService {
	return &HealthService{serviceName: serviceName, checkStore: checkStore}
}

// Check reports service health, including the durable store when present
func (s *HealthService) Check() *HealthStatus {
	status := "healthy"
	if s.checkStore != nil {
		if err := s.checkStore(); err != nil {
			status = "degraded"
		}
	}
	return &HealthStatus{
		Status:  status,
		Service: s.serviceName,
	}
}
