package domain

import "strings"

// PaymentMethods are the choices offered in the purchase menu.
var PaymentMethods = []string{
	"PayPal",
	"Cashapp",
	"Venmo",
	"Zelle",
	"Bitcoin",
	"Ethereum",
	"In-game coins",
}

// PaymentValue converts a display label into the menu value embedded in
// the select option ("In-game coins" -> "in-game_coins").
func PaymentValue(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// HumanizePayment restores spaces in a menu value for display.
func HumanizePayment(value string) string {
	return strings.ReplaceAll(value, "_", " ")
}
