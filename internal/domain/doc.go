// Package domain contains the core entities of the flashcard generator:
// the worked example a caller submits, the flashcards produced from it, and
// the study-planning records produced by the auxiliary AI features. Types in
// this package carry no infrastructure concerns and are safe to share across
// goroutines once constructed.
package domain
