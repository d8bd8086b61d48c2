// Package pdfdoc decodes PDF files into the page and glyph form the converter
// consumes. Text runs are regrouped into lines by baseline so headings and
// paragraphs survive extraction.
package pdfdoc
