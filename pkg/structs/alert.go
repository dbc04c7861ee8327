package structs

type Alert struct {
	Topic   string
	Subject string
	Message string
	Event   string
	Record  Record
}
