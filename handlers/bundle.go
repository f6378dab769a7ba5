package handlers

// HandlerBundle aggregates the HTTP handlers wired in main and consumed by
// route registration.
type HandlerBundle struct {
	Search       *SearchHandler
	Partner      *PartnerHandler
	Registration *RegistrationHandler
	Admin        *AdminHandler
	CSV          *CSVHandler
	Storage      *StorageHandler
}
