// Package selectors holds the playwright selectors for each page of the shop.
// They encode the live site's markup and break when it changes.
package selectors
