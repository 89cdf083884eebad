package utils

import (
	"log"
	"net"
	"sync"

	"github.com/oschwald/geoip2-golang"
)

// HostIPInfo is best-effort enrichment about a probed host's resolved
// address. GeoIP fields stay zero when the MaxMind databases are not loaded.
type HostIPInfo struct {
	Address        string
	CountryCode    string
	CountryName    string
	ASN            uint
	ASOrganization string
}

var (
	cityDB       *geoip2.Reader
	asnDB        *geoip2.Reader
	cityLoadOnce sync.Once
	asnLoadOnce  sync.Once
)

// LoadMaxMindDBs initializes the GeoIP2 readers. Both databases are optional;
// a missing or unreadable database only disables the corresponding lookups.
func LoadMaxMindDBs(cityDBPath string, asnDBPath string) {
	if cityDBPath != "" {
		cityLoadOnce.Do(func() {
			db, err := geoip2.Open(cityDBPath)
			if err != nil {
				log.Printf("ERROR: Could not open GeoLite2-City database at %s: %v. Country lookups will be disabled.", cityDBPath, err)
				return
			}
			cityDB = db
			log.Printf("Successfully loaded GeoLite2-City database from %s", cityDBPath)
		})
	} else {
		log.Println("WARN: City MMDB path not provided. Country lookups will be disabled.")
	}

	if asnDBPath != "" {
		asnLoadOnce.Do(func() {
			db, err := geoip2.Open(asnDBPath)
			if err != nil {
				log.Printf("ERROR: Could not open GeoLite2-ASN database at %s: %v. ASN lookups will be disabled.", asnDBPath, err)
				return
			}
			asnDB = db
			log.Printf("Successfully loaded GeoLite2-ASN database from %s", asnDBPath)
		})
	} else {
		log.Println("WARN: ASN MMDB path not provided. ASN lookups will be disabled.")
	}
}

// CloseMaxMindDBs closes all GeoIP2 readers.
func CloseMaxMindDBs() {
	if cityDB != nil {
		if err := cityDB.Close(); err != nil {
			log.Printf("Error closing GeoLite2-City database: %v", err)
		}
	}
	if asnDB != nil {
		if err := asnDB.Close(); err != nil {
			log.Printf("Error closing GeoLite2-ASN database: %v", err)
		}
	}
}

// LookupHostIP resolves a hostname and annotates the first address with
// country and ASN data when available. A nil result means resolution failed;
// callers treat that as an absent record, never as an error.
func LookupHostIP(host string) *HostIPInfo {
	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		return nil
	}

	info := &HostIPInfo{Address: addrs[0]}

	parsedIP := net.ParseIP(addrs[0])
	if parsedIP == nil {
		return info
	}

	if cityDB != nil {
		if record, err := cityDB.City(parsedIP); err == nil && record != nil {
			info.CountryCode = record.Country.IsoCode
			if name, ok := record.Country.Names["en"]; ok {
				info.CountryName = name
			}
		}
	}

	if asnDB != nil {
		if record, err := asnDB.ASN(parsedIP); err == nil && record != nil {
			info.ASN = record.AutonomousSystemNumber
			info.ASOrganization = record.AutonomousSystemOrganization
		}
	}

	return info
}
