// Mkboot builds an SD card image for the BIOS sdcardboot path.
//
// The image gets an MBR with a single FAT32 partition holding boot.bin,
// which the BIOS copies to main ram and jumps to. With -run the finished
// image is passed to an emulator or flasher command and its console is
// streamed to the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/partition/mbr"
	"github.com/fatih/color"

	"github.com/mgrbr/vexsoc/soc"
)

const usageString = `SD card image builder for %s.

Usage: %s [flags] <boot.bin>

`

var (
	outfile = flag.String("o", "boot.img", "output image path")
	sizeMB  = flag.Int64("size", 64, "image size in MiB")
	label   = flag.String("label", "BOOT", "volume label")
	run     = flag.String("run", "", "run the image with command")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, soc.Name, os.Args[0])
	flag.PrintDefaults()
}

// The first partition starts at the traditional 1 MiB boundary.
const partStart = 2048

func main() {
	log.Default().SetFlags(0)
	log.Default().SetPrefix("mkboot: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	infile := flag.Arg(0)

	boot, err := os.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer boot.Close()

	if info, err := boot.Stat(); err == nil && info.Size() > soc.MainRamSize {
		color.Yellow("warning: %s is larger than main ram (%d > %d bytes), the BIOS won't load it",
			infile, info.Size(), int64(soc.MainRamSize))
	}

	if err := writeImage(*outfile, *sizeMB<<20, boot); err != nil {
		os.Remove(*outfile)
		log.Fatalln(err)
	}
	log.Printf("wrote %s (%d MiB)", *outfile, *sizeMB)

	if *run != "" {
		if err := runImage(*run, *outfile); err != nil {
			log.Fatalln(err)
		}
	}
}

func writeImage(path string, size int64, boot io.Reader) error {
	d, err := diskfs.Create(path, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return err
	}
	defer d.Close()

	table := &mbr.Table{
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
		Partitions: []*mbr.Partition{{
			Bootable: false,
			Type:     mbr.Fat32LBA,
			Start:    partStart,
			Size:     uint32(size/512 - partStart),
		}},
	}
	if err := d.Partition(table); err != nil {
		return err
	}

	fs, err := d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: *label,
	})
	if err != nil {
		return err
	}

	dst, err := fs.OpenFile("/boot.bin", os.O_CREATE|os.O_RDWR)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, boot)
	return err
}
