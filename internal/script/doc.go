// Package script defines the section and conversion result types shared by the
// converter, the ingestion glue, and the script library.
package script
