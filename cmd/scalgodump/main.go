// Package main provides a command-line utility to inspect scalgoproto
// message files: it validates the root and root-table headers and
// hex-dumps the raw bytes for debugging.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scalgo/scalgoproto"
)

func main() {
	offset := flag.Int64("offset", 0, "Offset in file to start dumping from")
	length := flag.Int("length", 128, "Number of bytes to dump")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: scalgodump [flags] <message.bin>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	file := args[0]
	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	r := scalgoproto.NewReader(data)
	if root, err := r.Root(); err != nil {
		fmt.Printf("root: invalid (%v)\n", err)
	} else {
		fmt.Printf("root: table body at byte %d, size %d bytes\n", root.Start, root.Size)
	}

	fileSize := int64(len(data))
	if *offset < 0 || *offset >= fileSize {
		log.Fatalf("Invalid offset: %d (file size: %d)", *offset, fileSize)
	}
	if *length < 1 {
		log.Fatalf("Invalid length: %d", *length)
	}

	remaining := fileSize - *offset
	readLength := int64(*length)
	if readLength > remaining {
		readLength = remaining
	}

	buf := data[*offset : *offset+readLength]
	fmt.Printf("Dumping %d bytes at offset 0x%x (%d) of %s (size: %d bytes):\n",
		len(buf), *offset, *offset, file, fileSize)

	for i := 0; i < len(buf); i += 16 {
		end := i + 16
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[i:end]

		fmt.Printf("%08x: ", *offset+int64(i))
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Printf("%02x ", chunk[j])
			} else {
				fmt.Print("   ")
			}
			if j == 7 {
				fmt.Print(" ")
			}
		}
		fmt.Print(" |")
		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
}
