// Package menu holds the fixed catalogue the CLI can order from: three pizza
// sizes and the recognised toppings, each mapped to the product and option codes
// of the remote ordering protocol.
package menu
