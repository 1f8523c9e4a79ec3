// File: /models/types.go
package models

type ServiceType string

const (
	ServiceOilChange          ServiceType = "oil_change"
	ServiceTireChange         ServiceType = "tire_change"
	ServiceBrakeService       ServiceType = "brake_service"
	ServiceChainMaintenance   ServiceType = "chain_maintenance"
	ServiceGeneralMaintenance ServiceType = "general_maintenance"
	ServiceRepair             ServiceType = "repair"
	ServiceInspection         ServiceType = "inspection"
	ServiceOther              ServiceType = "other"
)

// ServiceTypes lists every accepted service type in declaration order.
var ServiceTypes = []string{
	string(ServiceOilChange),
	string(ServiceTireChange),
	string(ServiceBrakeService),
	string(ServiceChainMaintenance),
	string(ServiceGeneralMaintenance),
	string(ServiceRepair),
	string(ServiceInspection),
	string(ServiceOther),
}

type EventType string

const (
	EventTrip         EventType = "trip"
	EventAccident     EventType = "accident"
	EventModification EventType = "modification"
	EventPurchase     EventType = "purchase"
	EventInsurance    EventType = "insurance"
	EventRegistration EventType = "registration"
	EventOther        EventType = "other"
)

var EventTypes = []string{
	string(EventTrip),
	string(EventAccident),
	string(EventModification),
	string(EventPurchase),
	string(EventInsurance),
	string(EventRegistration),
	string(EventOther),
}

type ModificationType string

const (
	ModificationProtection  ModificationType = "protection"
	ModificationPerformance ModificationType = "performance"
	ModificationAesthetic   ModificationType = "aesthetic"
	ModificationComfort     ModificationType = "comfort"
	ModificationStorage     ModificationType = "storage"
	ModificationElectronics ModificationType = "electronics"
	ModificationOther       ModificationType = "other"
)

var ModificationTypes = []string{
	string(ModificationProtection),
	string(ModificationPerformance),
	string(ModificationAesthetic),
	string(ModificationComfort),
	string(ModificationStorage),
	string(ModificationElectronics),
	string(ModificationOther),
}
