package services

const confirmationHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2 style="color: #0f766e;">{{.Brand}}</h2>
  <p>Hi {{.Order.ContactInfo.Name}},</p>
  <p>Thank you for booking with us. Your order <strong>#{{.Reference}}</strong> has been received.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td>Order date</td><td>{{.OrderDate}}</td></tr>
    <tr><td>Status</td><td>{{.Order.Status}}</td></tr>
    <tr><td>Payment status</td><td>{{.Order.PaymentStatus}}</td></tr>
    <tr><td>Payment method</td><td>{{.Order.PaymentMethod}}</td></tr>
  </table>
  <h3>Trips</h3>
  <table cellpadding="6" border="1" style="border-collapse: collapse;">
    <tr><th>Trip</th><th>Location</th><th>Date</th><th>Travelers</th><th>Price</th></tr>
    {{range .Trips}}<tr><td>{{.Name}}</td><td>{{.Location}}</td><td>{{.Date}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
    {{end}}
  </table>
  <p><strong>Total: {{.Total}}</strong></p>
  {{if .Order.SpecialRequests}}<p>Special requests: {{.Order.SpecialRequests}}</p>{{end}}
  <p>Your invoice is attached.</p>
  <p>{{.Brand}}</p>
</body>
</html>`

const confirmationText = `{{.Brand}}

Hi {{.Order.ContactInfo.Name}},

Thank you for booking with us. Your order #{{.Reference}} has been received.

Order date:     {{.OrderDate}}
Status:         {{.Order.Status}}
Payment status: {{.Order.PaymentStatus}}
Payment method: {{.Order.PaymentMethod}}

Trips:
{{range .Trips}}- {{.Name}}, {{.Location}} on {{.Date}}: {{.Quantity}} traveler(s) at {{.Price}}
{{end}}
Total: {{.Total}}
{{if .Order.SpecialRequests}}
Special requests: {{.Order.SpecialRequests}}
{{end}}
Your invoice is attached.

{{.Brand}}
`
