package repository

import (
	partnerRepo "github.com/fierogr/findfarewells-sub000/database/repository/partner"
	registrationRepo "github.com/fierogr/findfarewells-sub000/database/repository/registration"
	searchlogRepo "github.com/fierogr/findfarewells-sub000/database/repository/searchlog"
	settingsRepo "github.com/fierogr/findfarewells-sub000/database/repository/settings"
)

// Re-export the PartnerRepository interface and constructor.
type PartnerRepository = partnerRepo.PartnerRepository

var NewMongoPartnerRepo = partnerRepo.NewMongoPartnerRepo

// Re-export the RegistrationRepository interface and constructor.
type RegistrationRepository = registrationRepo.RegistrationRepository

var NewMongoRegistrationRepo = registrationRepo.NewMongoRegistrationRepo

// Re-export the SearchLogRepository interface and constructor.
type SearchLogRepository = searchlogRepo.SearchLogRepository

var NewMongoSearchLogRepo = searchlogRepo.NewMongoSearchLogRepo

// Re-export the SettingsRepository interface and constructor.
type SettingsRepository = settingsRepo.SettingsRepository

var NewMongoSettingsRepo = settingsRepo.NewMongoSettingsRepo
