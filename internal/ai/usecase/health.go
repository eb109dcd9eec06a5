package usecase

import "context"

// HealthCheck probes the model gateway with a trivial prompt.
func (uc *implUseCase) HealthCheck(ctx context.Context) string {
	resp, err := uc.gateway.Complete(ctx, "Say 'Hello, the model gateway is working'")
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.HealthCheck: %v", err)
		return "AI health check failed"
	}
	return resp
}
