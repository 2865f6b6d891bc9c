package constant

const (
	ProductStatusPending  = "pending"
	ProductStatusActive   = "Active"
	ProductStatusRejected = "rejected"
	ProductStatusReserved = "reserved"
	ProductStatusSold     = "sold"
)

const (
	VerificationNotRequested = "NotRequested"
	VerificationRequested    = "Requested"
	VerificationInProgress   = "InProgress"
	VerificationVerified     = "Verified"
	VerificationRejected     = "Rejected"
)

const (
	ProductTypeVehicle = "Vehicle"
	ProductTypeBattery = "Battery"
)

const (
	FeeTypeDepositPercentage = "DepositPercentage"
	FeeTypeVerificationFee   = "VerificationFee"
)
