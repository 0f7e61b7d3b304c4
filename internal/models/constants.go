package models

// ============================================================================
// NAME CONSTANTS
// ============================================================================

// MaxNameLength is the longest allowed habit or task name
const MaxNameLength = 255

// ============================================================================
// WEEK CONSTANTS
// ============================================================================

// DaysPerWeek is the number of tracked days in a week
const DaysPerWeek = 7
