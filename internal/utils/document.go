package utils

import (
	"fmt"
	"math/rand"
)

// GenerateCPF produces a random but checksum-valid CPF number, digits
// only. The payment gateway validates the check digits of the payer
// document on charge creation.
func GenerateCPF() string {
	digits := make([]int, 9)
	for i := range digits {
		digits[i] = rand.Intn(10)
	}

	d1 := 0
	for i, d := range digits {
		d1 += d * (10 - i)
	}
	d1 = 11 - (d1 % 11)
	if d1 >= 10 {
		d1 = 0
	}

	d2 := d1 * 2
	for i, d := range digits {
		d2 += d * (11 - i)
	}
	d2 = 11 - (d2 % 11)
	if d2 >= 10 {
		d2 = 0
	}

	out := ""
	for _, d := range digits {
		out += fmt.Sprintf("%d", d)
	}
	return out + fmt.Sprintf("%d%d", d1, d2)
}
