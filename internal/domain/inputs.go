package domain

type ReportInput struct {
	CIDR string
}

type AllocateInput struct {
	CIDR  string
	Hosts []int
}
