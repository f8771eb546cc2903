package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and
// the batch CLI.
type ServiceContainer struct {
	Accounts   AccountRegistrySvc
	Conversion CurrencyConversionSvc
	Posting    PostingSvcFacade
	Reversal   ReversalSvcFacade
	Document   DocumentSvcFacade
	Journal    JournalSvcFacade
	Tax        TaxAccrualSvcFacade
}
