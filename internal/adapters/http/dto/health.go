package dto

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// Health is the body of the liveness and readiness endpoints. Checks is only
// set on readiness and maps each registered dependency to "ok" or its
// failure message.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadiness folds health check results into a readiness body and reports
// whether every check passed.
func ToReadiness(results map[string]error) (Health, bool) {
	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = HealthOK
	}

	status := HealthReady
	if !healthy {
		status = HealthNotReady
	}
	return Health{Status: status, Checks: checks}, healthy
}
