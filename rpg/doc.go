// Package rpg holds the vocabulary of map documents: event command and
// move command codes with their display names, the canonical order of
// page fields, and the defaults applied to absent map attributes.
package rpg
