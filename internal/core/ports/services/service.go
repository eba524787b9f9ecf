package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Session    SessionSvcFacade
	Reconciler ReconcilerSvcFacade
	Insight    InsightSvcFacade
	Market     MarketSvcFacade
}
