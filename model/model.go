// Package model contains abstract data models.
package model
