package models

// MaxTitleLength is the longest title accepted for an item
const MaxTitleLength = 255

// MaxNoteLength is the longest free-text note accepted for an item
const MaxNoteLength = 10000
