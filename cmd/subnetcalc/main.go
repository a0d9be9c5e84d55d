package main

import (
	"bufio"
	"context"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Flarenzy/subnet-calc/internal/domain"
)

var (
	promptStyle = pterm.NewStyle(pterm.FgBlue)
	labelStyle  = pterm.NewStyle(pterm.FgCyan)
	valueStyle  = pterm.NewStyle(pterm.FgGreen)
	errorStyle  = pterm.NewStyle(pterm.FgLightRed)
)

func main() {
	service := domain.NewCalculatorService()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		promptStyle.Println("Enter IP/CIDR (e.g., 192.168.1.10/24) or 'exit' to quit:")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(input, "exit") {
			pterm.NewStyle(pterm.FgLightYellow).Println("Exiting...")
			return
		}

		if msg := validateCIDRInput(input); msg != "" {
			errorStyle.Println(msg + "\n")
			continue
		}

		promptStyle.Println("Host counts for VLSM subnets (e.g., 50,20,10) or leave empty for a plain report:")
		if !scanner.Scan() {
			return
		}
		hostsLine := strings.TrimSpace(scanner.Text())

		if hostsLine == "" {
			printReport(service, input)
			continue
		}

		hosts, msg := parseHostCounts(hostsLine)
		if msg != "" {
			errorStyle.Println(msg + "\n")
			continue
		}

		printAllocations(service, input, hosts)
	}
}

func printReport(service domain.CalculatorService, cidr string) {
	report, err := service.NetworkReport(context.Background(), domain.ReportInput{CIDR: cidr})
	if err != nil {
		errorStyle.Println(err.Error() + "\n")
		return
	}

	firstHost, lastHost := report.FirstUsable, report.LastUsable
	if !firstHost.IsValid() {
		// /31 and /32 networks have no reserved addresses to skip.
		firstHost, lastHost = report.Network, report.Broadcast
	}

	pterm.NewStyle(pterm.FgLightCyan).Println("\nResults:")
	printRow("IP Address       :", report.IP.String())
	printRow("Subnet Mask      :", report.Mask.String())
	printRow("Network Address  :", report.Network.String())
	printRow("Broadcast Address:", report.Broadcast.String())
	printRow("Usable Range     :", fmt.Sprintf("%s - %s", firstHost, lastHost))
	fmt.Println()
}

func printAllocations(service domain.CalculatorService, cidr string, hosts []int) {
	allocations, err := service.AllocateSubnets(context.Background(), domain.AllocateInput{CIDR: cidr, Hosts: hosts})
	if err != nil {
		errorStyle.Println(err.Error() + "\n")
		return
	}

	data := pterm.TableData{
		{"#", "Hosts", "Subnet", "Mask", "Broadcast", "Usable Range", "Capacity"},
	}
	for _, alloc := range allocations {
		usable := "-"
		if alloc.FirstUsable.IsValid() {
			usable = fmt.Sprintf("%s - %s", alloc.FirstUsable, alloc.LastUsable)
		}
		data = append(data, []string{
			strconv.Itoa(alloc.Index),
			strconv.Itoa(alloc.Hosts),
			netip.PrefixFrom(alloc.Network, alloc.Prefix).String(),
			alloc.Mask.String(),
			alloc.Broadcast.String(),
			usable,
			strconv.FormatUint(uint64(alloc.UsableHosts), 10),
		})
	}

	fmt.Println()
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		errorStyle.Println(err.Error())
	}
	fmt.Println()
}

func printRow(label, value string) {
	labelStyle.Print(label + " ")
	valueStyle.Println(value)
}

// validateCIDRInput checks the raw prompt input and returns a user-facing
// message when it is not an IPv4 IP/CIDR pair.
func validateCIDRInput(input string) string {
	parts := strings.Split(input, "/")
	if len(parts) != 2 {
		return "Invalid format! Use IP/CIDR like 192.168.1.10/24"
	}

	ip, err := netip.ParseAddr(parts[0])
	if err != nil || !ip.Is4() {
		return "Invalid IP address!"
	}

	prefix, err := strconv.Atoi(parts[1])
	if err != nil || prefix < 0 || prefix > 32 {
		return "Invalid prefix! Use a number between 0 and 32."
	}

	return ""
}

// parseHostCounts accepts comma or whitespace separated positive integers.
func parseHostCounts(line string) ([]int, string) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	hosts := make([]int, 0, len(fields))
	for _, field := range fields {
		count, err := strconv.Atoi(field)
		if err != nil || count <= 0 {
			return nil, fmt.Sprintf("Invalid host count %q! Use positive numbers like 50,20,10.", field)
		}
		hosts = append(hosts, count)
	}
	if len(hosts) == 0 {
		return nil, "Invalid host counts! Use positive numbers like 50,20,10."
	}

	return hosts, ""
}
