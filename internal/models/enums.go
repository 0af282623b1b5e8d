package models

type ConsultantRole string

const (
	RoleSales          ConsultantRole = "sales"
	RoleAdministrative ConsultantRole = "administrative"
)

type CustomerKind string

const (
	CustomerNatural CustomerKind = "natural"
	CustomerLegal   CustomerKind = "legal"
)

type OwnershipKind string

const (
	OwnershipCustomer OwnershipKind = "customer"
	OwnershipOwner    OwnershipKind = "owner"
)

type VehicleUsage string

const (
	UsageParticular VehicleUsage = "particular"
	UsageCommercial VehicleUsage = "commercial"
	UsageTaxi       VehicleUsage = "taxi"
	UsageCargo      VehicleUsage = "cargo"
)

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentInstallment PaymentMethod = "installment"
	PaymentDirectDebit PaymentMethod = "direct_debit"
)

type IssuanceStatus string

const (
	IssuanceActive IssuanceStatus = "active"
	IssuanceVoid   IssuanceStatus = "void"
)

type CollectionStatus string

const (
	CollectionPending CollectionStatus = "pending"
	CollectionPaid    CollectionStatus = "paid"
)
