// Package mcp provides an MCP (Model Context Protocol) server adapter for bookscan.
// It lets AI assistants convert transcriptions and read stored runs.
package mcp

import "errors"

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("mcp: conversion service is required")
