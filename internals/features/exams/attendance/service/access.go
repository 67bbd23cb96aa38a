// internals/features/exams/attendance/service/access.go
package service

// StationAllowed decides who may use a verification station.
//
// Writing a record always requires an invigilation assignment on the
// allocation's (session, room); verified_by must point at someone who is
// actually posted there, admins included. Admins without an assignment
// may still read the log for auditing.
func StationAllowed(isAdmin bool, assignmentCount int64, readOnly bool) bool {
	if assignmentCount > 0 {
		return true
	}
	return isAdmin && readOnly
}
