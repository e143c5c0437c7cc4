package domain

// ChargeMode decides when an acquisition is billed.
type ChargeMode string

const (
	// ChargePerMiss bills every provider fetch (cache miss) for the caller.
	ChargePerMiss ChargeMode = "per_miss"
	// ChargePerResource bills the first access of an account to a resource only.
	ChargePerResource ChargeMode = "per_resource"
	// ChargeFree never bills.
	ChargeFree ChargeMode = "free"
)

// Policy binds a user-facing operation to its cache domain and billing rule.
type Policy struct {
	Operation Operation
	Domain    Domain
	Charge    ChargeMode
}

// Policies is the per-operation policy table.
var Policies = map[Operation]Policy{
	OpProcessSearch:  {Operation: OpProcessSearch, Domain: DomainProcess, Charge: ChargePerMiss},
	OpProcessDetail:  {Operation: OpProcessDetail, Domain: DomainProcess, Charge: ChargePerResource},
	OpRegistration:   {Operation: OpRegistration, Domain: DomainRegistration, Charge: ChargePerMiss},
	OpCriminalRecord: {Operation: OpCriminalRecord, Domain: DomainCriminalRecord, Charge: ChargePerResource},
	OpGazetteSearch:  {Operation: OpGazetteSearch, Domain: DomainGazette, Charge: ChargeFree},
	// Movement refreshes are billed through the monitoring subscription.
	OpProcessMovements: {Operation: OpProcessMovements, Domain: DomainProcess, Charge: ChargeFree},
}

// PolicyFor returns the policy registered for op.
func PolicyFor(op Operation) (Policy, bool) {
	p, ok := Policies[op]
	return p, ok
}
