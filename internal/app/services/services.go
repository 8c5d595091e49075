package services

// Services defined in this package:
// - AuthService: staff login and refresh token exchange
// - StaffService: staff account management
// - StudentService: student enrollment records
// - EventService: events and their participant sets
// - AchievementService: write-once achievement records
// - ProjectService: owner-scoped projects and contribution notes
// - SalaryTemplateService: pay structure templates
// - TransportFormService: transport seat requests
// - LeaveRequestService: staff leave requests
// - EnquiryService: admission enquiries
// - ResourceService: teaching resource uploads
// - SupportTicketService: IT support tickets
// - DisciplinaryActionService: disciplinary incident records
