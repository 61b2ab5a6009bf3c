package main

import "local-services-marketplace/internal/domain/entity"

// Categories is the launch catalogue of services offered on the marketplace.
func Categories() []entity.Category {
	list := []entity.Category{
		// Home & Personal Services
		{Name: "Barbers"},
		{Name: "House cleaning"},
		{Name: "Laundry & dry cleaning"},
		{Name: "Plumbing & electrical repairs"},
		{Name: "Air conditioning installation/servicing"},
		{Name: "Pest control", Description: "Pest elimination and prevention services"},
		{Name: "Interior decoration", Description: "Home and office interior design services"},
		{Name: "Painting", Description: "House and building painting services"},
		{Name: "Carpentry & furniture making", Description: "Wood working, furniture making, and carpentry services"},
		{Name: "Home tutoring (for children)", Description: "Private tutoring and educational support for children"},
		{Name: "Personal fitness training", Description: "Personal fitness coaching and training services"},
		{Name: "Massage therapy & spa services", Description: "Therapeutic massage and spa treatment services"},
		{Name: "Beauty & makeup services (e.g. for weddings)", Description: "Professional beauty and makeup services for events"},
		{Name: "Hairdressing/barbing", Description: "Hair styling, cutting, and grooming services"},

		// Skilled Trade & Technical Services
		{Name: "Auto repair/mechanic", Description: "Vehicle repair and maintenance services"},
		{Name: "Auto diagnostics and computerization", Description: "Vehicle diagnostic and computer system services"},
		{Name: "Generator maintenance", Description: "Generator repair, maintenance, and servicing"},
		{Name: "Welding & fabrication", Description: "Metal welding and fabrication services"},
		{Name: "Tailoring & fashion design", Description: "Clothing design, tailoring, and alteration services"},
		{Name: "Shoe & bag repairs", Description: "Footwear and bag repair services"},
		{Name: "Phone & gadget repairs", Description: "Mobile phone and electronic device repair services"},
		{Name: "Satellite TV installation (DSTV, GoTV)", Description: "Satellite TV installation and setup services"},

		// Digital & Tech Services
		{Name: "Website design/development", Description: "Web design and development services"},
		{Name: "Graphic design & branding", Description: "Graphic design and brand identity services"},
		{Name: "Photography & videography", Description: "Professional photography and videography services"},
		{Name: "Social media management", Description: "Social media marketing and management services"},
		{Name: "Digital marketing", Description: "Online marketing and advertising services"},
		{Name: "SEO services", Description: "Search engine optimization services"},
		{Name: "App development", Description: "Mobile and web application development"},
		{Name: "Tech support & computer repairs", Description: "Computer repair and technical support services"},
		{Name: "Printing & photocopying", Description: "Printing, photocopying, and document services"},
		{Name: "Cybercafé and internet services", Description: "Internet access and cyber café services"},
		{Name: "CCTV & security system installation", Description: "Security camera and system installation services"},

		// Corporate & Professional Services
		{Name: "Legal services (lawyers)", Description: "Legal consultation and representation services"},
		{Name: "Accounting & tax consultancy", Description: "Accounting, bookkeeping, and tax services"},
		{Name: "Real estate agency", Description: "Property buying, selling, and rental services"},
		{Name: "Property management", Description: "Property management and maintenance services"},
		{Name: "Engineering consultancy", Description: "Professional engineering consultation services"},
		{Name: "Oil & gas services", Description: "Oil and gas industry support services"},
		{Name: "Procurement & logistics", Description: "Procurement and supply chain management services"},
		{Name: "HR & recruitment services", Description: "Human resources and recruitment services"},
		{Name: "Document typing & CV writing", Description: "Document preparation and CV writing services"},
		{Name: "Event planning & management", Description: "Event planning and coordination services"},

		// Logistics & Transportation
		{Name: "Bike delivery (dispatch riders)", Description: "Motorcycle delivery and courier services"},
		{Name: "Package courier service", Description: "Package delivery and courier services"},
		{Name: "Truck/haulage services", Description: "Heavy-duty transportation and haulage services"},
		{Name: "Car hire services", Description: "Vehicle rental and hire services"},
		{Name: "Boat transport (for riverside areas)", Description: "Water transportation services"},
		{Name: "Movers & packers", Description: "Moving and packing services for relocation"},

		// Event & Entertainment Services
		{Name: "Catering services", Description: "Food catering for events and occasions"},
		{Name: "Event décor", Description: "Event decoration and styling services"},
		{Name: "Rental services (canopies, chairs, coolers)", Description: "Event equipment rental services"},
		{Name: "MCs, DJs, and live band hire", Description: "Entertainment services for events"},
		{Name: "Party planning for kids & adults", Description: "Party planning and coordination services"},
		{Name: "Photography & drone videography", Description: "Aerial photography and videography services"},
		{Name: "Makeup artists for events", Description: "Professional makeup services for events"},
		{Name: "Fashion styling", Description: "Personal styling and fashion consultation services"},

		// Retail & E-commerce
		{Name: "Food delivery", Description: "Restaurant and food delivery services"},
		{Name: "Grocery shopping & delivery", Description: "Grocery shopping and delivery services"},
		{Name: "Online fashion vendors", Description: "Fashion retail and online clothing sales"},
		{Name: "Home appliance vendors", Description: "Home appliance sales and distribution"},
		{Name: "Mobile phones & accessories sales", Description: "Mobile phone and accessory retail"},
		{Name: "Electronics retail", Description: "Electronic devices and gadgets retail"},
		{Name: "Hair & beauty product sales", Description: "Beauty and hair care product sales"},

		// Health & Wellness Services
		{Name: "Mobile health testing", Description: "Mobile health screening and testing services (blood pressure, sugar, etc.)"},
		{Name: "Home nursing care", Description: "Home healthcare and nursing services"},
		{Name: "Physiotherapy", Description: "Physical therapy and rehabilitation services"},
		{Name: "Herbal medicine/traditional healing", Description: "Traditional medicine and herbal healing services"},
		{Name: "Counseling & therapy", Description: "Mental health counseling and therapy services"},
		{Name: "Pharmacy delivery", Description: "Medication delivery and pharmacy services"},

		// Education & Training
		{Name: "Private/home tutoring", Description: "Private tutoring and educational support"},
		{Name: "JAMB/WAEC/IELTS coaching", Description: "Exam preparation and coaching services"},
		{Name: "Vocational training (e.g. fashion, tech)", Description: "Skills training and vocational education"},
		{Name: "Online courses & seminars", Description: "Online education and training programs"},
		{Name: "Driving school", Description: "Driving lessons and license preparation"},
		{Name: "Music & instrument lessons", Description: "Music education and instrument training"},

		// Pet & Agricultural Services
		{Name: "Veterinary services", Description: "Animal healthcare and veterinary services"},
		{Name: "Pet grooming", Description: "Pet grooming and care services"},
		{Name: "Poultry farming consultancy", Description: "Poultry farming advice and consultation"},
		{Name: "Garden & landscaping", Description: "Garden design and landscaping services"},
		{Name: "Fish farming setup/support", Description: "Aquaculture setup and support services"},
	}
	for i := range list {
		list[i].IsActive = true
	}
	return list
}
