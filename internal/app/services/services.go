// Package services implements the allocation core as a synchronous pipeline
// of pure transformations: normalization, conflict checking, panel building,
// auto-assignment, and mark-status aggregation. Nothing here blocks on I/O;
// callers serialize structural mutations per scope (see internal/store) and
// simply recompute on a fresh snapshot when they need to retry.
package services

// Services defined in this package:
// - ConflictResolver: gates every team-to-panel placement on the guide rule
// - PanelBuilder: partitions the eligible faculty pool into panel drafts
// - Assigner: distributes unassigned teams across existing panels
// - MarkStatusService: derives team/panel/dashboard completion records
