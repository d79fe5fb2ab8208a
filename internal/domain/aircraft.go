package domain

type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "ACTIVE"
	AircraftStatusMaintenance AircraftStatus = "MAINTENANCE"
	AircraftStatusInactive    AircraftStatus = "INACTIVE"
)

// Aircraft is a fleet record. Type is free text such as "Phenom 300".
type Aircraft struct {
	ID           AircraftID
	Registration string
	Type         string
	Status       AircraftStatus
}
