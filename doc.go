/*
Package gsheets is a client library and command line tool for Google Sheets.

The sheet package maps the Sheets v4 and Drive v3 REST resources onto local
object models (Spreadsheet, Worksheet, Cell, DataRange and Chart) with
support for batched updates, value parsing, named and protected ranges and
spreadsheet export.

The gsheets command line tool supports the following commands:

  - authorise, to run the OAuth2 consent flow and cache the access tokens
  - get, to download a worksheet range as a TSV file
  - put, to store a TSV file to a worksheet range
  - export, to export a spreadsheet (or worksheet) to CSV, TSV, XLSX, PDF or ODS
  - version, to display the version information
*/
package gsheets
