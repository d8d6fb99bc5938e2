// Package pagination turns CLI paging flags into directory fetch
// parameters and formats the paging metadata of a listed page.
//
// Users count pages from 1 on the command line; fetch sources count from 0.
// Params converts between the two. Sorting applies to the fetched page only.
package pagination
