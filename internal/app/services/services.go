package services

// Services defined in this package:
// - AuthService: login by email and profile lookup
// - ScopeService: role-scoped read projections over the session store
// - DashboardService: per-role dashboard payload assembly
// - AttendanceService: attendance marking and per-student aggregation
// - UserService: administrator user management and CSV export
// - InsightService: generative-language insights and chat forwarding
//
// The pure core (ComputeStats, ScopeFor, MarkAttendance, SaveUser,
// DeleteUser) lives alongside the service implementations so it can be
// exercised directly against plain collections.
