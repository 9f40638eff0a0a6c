package main

import "hotel-booking-engine/cmd/bookingctl/cmd"

func main() {
	cmd.Execute()
}
