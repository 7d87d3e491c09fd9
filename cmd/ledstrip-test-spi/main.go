package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/BeatGlow/ledstrip/conn"
)

func main() {
	busFlag := flag.Int("bus", 0, "SPI bus")
	deviceFlag := flag.Int("device", 0, "SPI device")
	speedFlag := flag.Int("speed", -1, "Request a maximum speed in Hz (-1 leaves it unchanged)")
	flag.Parse()

	c, err := conn.OpenSPI(*busFlag, *deviceFlag)
	if err != nil {
		log.Fatalln("open failed: ", err)
	}
	fmt.Println("connected using", c)

	if *speedFlag >= 0 {
		if err = c.SetMaxSpeed(*speedFlag); err != nil {
			log.Fatalln("set speed failed: ", err)
		}
		fmt.Printf("max speed is now %dHz\n", c.MaxSpeed())
	}

	if err = c.Close(); err != nil {
		log.Fatalln("close failed: ", err)
	}
}
