package directory

// Snapshot is the read-only reference data for one import session. It is
// loaded once when the session starts and never refreshed mid-batch;
// entities created by concurrent administrators are intentionally not
// visible until the next session.
type Snapshot struct {
	Locations   []Location
	Departments []Department
	Roles       []Role
	Profiles    []Profile
}
