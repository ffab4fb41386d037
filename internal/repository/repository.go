package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
//
// All repositories report a missing row as sql.ErrNoRows so callers can
// translate it uniformly; that includes Update and Delete of unknown ids.
