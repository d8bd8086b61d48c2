// Package main hosts the scriptdesk CLI entrypoint and command graph.
//
// The Cobra-based command tree converts documents into timed scripts, saves
// them to the local library, and manages saved scripts. It centralizes
// configuration resolution and logging setup so subcommands only deal with
// flags and output.
//
// Keep this package lean: conversion lives in internal/convert and
// internal/ingest, persistence in internal/library.
package main
