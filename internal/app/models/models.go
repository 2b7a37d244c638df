// Package models holds the plain records the allocation core operates on:
// faculty roster entries, project teams with their students and reviews,
// evaluation panels, and marking schemas. Upstream collaborators (import
// pipelines, persistence) hand these in already populated; the core only
// mutates a team's panel-assignment pointer and a panel's team set.
package models
