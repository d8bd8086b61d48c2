// Package logs reads back the tail of the scriptdesk log file.
package logs
